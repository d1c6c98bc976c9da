// Package validation holds the request predicates shared by the handlers.
// Predicates never panic and never return errors; the Check helpers collect
// human readable messages in the order they are called.
package validation

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

const (
	MsgDistance  = "Invalid distance"
	MsgLongitude = "Invalid longitude"
	MsgLatitude  = "Invalid latitude"
	MsgAnimals   = "Invalid animal array"
	MsgPolygon   = "Invalid polygon coordinates"
	MsgEmail     = "Invalid email"
)

// MaxDistance is the largest search radius (meters) a client may request.
const MaxDistance = 10000

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the process-wide validator instance.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Message is one entry of the errors[] array returned with HTTP 422.
type Message struct {
	Msg string `json:"msg"`
}

// AnimalFields is implemented by anything carrying the two animal names.
type AnimalFields interface {
	Names() (common, scientific string)
}

func Distance(d float64) bool {
	return Validator().Var(d, "gt=0,lte=10000") == nil
}

func Longitude(lon float64) bool {
	return Validator().Var(lon, "longitude") == nil
}

func Latitude(lat float64) bool {
	return Validator().Var(lat, "latitude") == nil
}

func Email(email string) bool {
	return Validator().Var(email, "required,email") == nil
}

// AnimalArray reports whether animals is non-empty and every entry has both names.
func AnimalArray[T AnimalFields](animals []T) bool {
	if len(animals) == 0 {
		return false
	}
	for _, a := range animals {
		common, scientific := a.Names()
		if strings.TrimSpace(common) == "" || strings.TrimSpace(scientific) == "" {
			return false
		}
	}
	return true
}

// PolygonCoordinates validates GeoJSON polygon rings: at least one ring,
// every ring closed with >= 4 positions of exactly [lon, lat].
func PolygonCoordinates(rings [][][]float64) bool {
	if len(rings) == 0 {
		return false
	}
	for _, ring := range rings {
		if len(ring) < 4 {
			return false
		}
		for _, pos := range ring {
			if len(pos) != 2 || !Longitude(pos[0]) || !Latitude(pos[1]) {
				return false
			}
		}
		first, last := ring[0], ring[len(ring)-1]
		if first[0] != last[0] || first[1] != last[1] {
			return false
		}
	}
	return true
}

// SanitizeStrings strips '$' so user input cannot smuggle query operators.
func SanitizeStrings(in ...string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = Sanitize(s)
	}
	return out
}

func Sanitize(s string) string {
	return strings.ReplaceAll(s, "$", "")
}

func CheckDistance(d float64, errs []Message) []Message {
	if !Distance(d) {
		errs = append(errs, Message{Msg: MsgDistance})
	}
	return errs
}

func CheckLongitude(lon float64, errs []Message) []Message {
	if !Longitude(lon) {
		errs = append(errs, Message{Msg: MsgLongitude})
	}
	return errs
}

func CheckLatitude(lat float64, errs []Message) []Message {
	if !Latitude(lat) {
		errs = append(errs, Message{Msg: MsgLatitude})
	}
	return errs
}

func CheckAnimalArray[T AnimalFields](animals []T, errs []Message) []Message {
	if !AnimalArray(animals) {
		errs = append(errs, Message{Msg: MsgAnimals})
	}
	return errs
}

func CheckPolygon(rings [][][]float64, errs []Message) []Message {
	if !PolygonCoordinates(rings) {
		errs = append(errs, Message{Msg: MsgPolygon})
	}
	return errs
}

func CheckEmail(email string, errs []Message) []Message {
	if !Email(email) {
		errs = append(errs, Message{Msg: MsgEmail})
	}
	return errs
}

// CheckPoint runs the fixed longitude, latitude order.
func CheckPoint(lon, lat float64, errs []Message) []Message {
	errs = CheckLongitude(lon, errs)
	return CheckLatitude(lat, errs)
}

// CheckSearch runs the fixed distance, longitude, latitude order.
func CheckSearch(distance, lon, lat float64, errs []Message) []Message {
	errs = CheckDistance(distance, errs)
	return CheckPoint(lon, lat, errs)
}
