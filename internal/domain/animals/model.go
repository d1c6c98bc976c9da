package animals

// NoData fills every enrichment field of an owned animal whose encyclopedia
// lookup came back empty.
const NoData = "no data"

// Stub identifies a species. ScientificName is the join key against the
// encyclopedia; CommonName is display only.
type Stub struct {
	CommonName     string `json:"common_name" bson:"common_name"`
	ScientificName string `json:"scientific_name" bson:"scientific_name"`
}

func (s Stub) Names() (string, string) { return s.CommonName, s.ScientificName }

// Enrichment is the encyclopedia data attached to a stub.
type Enrichment struct {
	ImageBase64 string `json:"image_base64" bson:"image_base64"`
	ImageLink   string `json:"image_link" bson:"image_link"`
	Description string `json:"description" bson:"description"`
}

// Placeholder is the enrichment used when an owned animal has no entry.
func Placeholder() Enrichment {
	return Enrichment{ImageBase64: NoData, ImageLink: NoData, Description: NoData}
}

// Enriched is a stub plus its encyclopedia data.
type Enriched struct {
	Stub       `bson:",inline"`
	Enrichment `bson:",inline"`
}
