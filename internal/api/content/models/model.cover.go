// Package contentmodels defines the persisted documents of the public
// site: profile, theme, reel, music, video clips, albums, shorts and
// reviews. Readers accept every shape that has ever been written; writers
// only emit the canonical one.
package contentmodels

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// CoverURL is an image URL that historically was sometimes stored as the
// raw upload-widget result object. It decodes from either a plain string
// or a document carrying secure_url/url, and always encodes as a string.
type CoverURL string

type coverObject struct {
	SecureURL string `bson:"secure_url"`
	URL       string `bson:"url"`
}

// UnmarshalBSONValue implements bson.ValueUnmarshaler.
func (c *CoverURL) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bsontype.Null, bsontype.Undefined:
		*c = ""
		return nil
	case bsontype.String:
		var s string
		if err := bson.UnmarshalValue(t, data, &s); err != nil {
			return err
		}
		*c = CoverURL(s)
		return nil
	case bsontype.EmbeddedDocument:
		var obj coverObject
		if err := bson.UnmarshalValue(t, data, &obj); err != nil {
			return err
		}
		if obj.SecureURL != "" {
			*c = CoverURL(obj.SecureURL)
		} else {
			*c = CoverURL(obj.URL)
		}
		return nil
	default:
		return fmt.Errorf("cannot decode %s into a cover URL", t)
	}
}

// MarshalBSONValue implements bson.ValueMarshaler.
func (c CoverURL) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(string(c))
}

func (c CoverURL) String() string {
	return string(c)
}
