package players

import "critter-collector/internal/domain/animals"

// CollectedAnimal is one entry of a player's box. Entries are unique per
// species; catching the same species again bumps Count.
type CollectedAnimal struct {
	CommonName     string `json:"common_name" bson:"common_name"`
	ScientificName string `json:"scientific_name" bson:"scientific_name"`
	Count          int    `json:"count" bson:"count"`
}

func (a CollectedAnimal) Stub() animals.Stub {
	return animals.Stub{CommonName: a.CommonName, ScientificName: a.ScientificName}
}

// Profile is keyed by UserName.
type Profile struct {
	UserName   string
	UserEmail  string
	Collection []CollectedAnimal
}

// BoxAnimal is a collected animal with its encyclopedia data.
type BoxAnimal struct {
	animals.Enriched
	Count int `json:"count"`
}
