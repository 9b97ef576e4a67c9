package utility

import "go.mongodb.org/mongo-driver/bson"

// ToMap converts a struct to bson.M by round-tripping through BSON so that
// bson struct tags decide the field names on the wire.
func ToMap(data interface{}) (map[string]interface{}, error) {
	raw, err := bson.Marshal(data)
	if err != nil {
		return nil, err
	}

	var result map[string]interface{}
	if err := bson.Unmarshal(raw, &result); err != nil {
		return nil, err
	}
	return result, nil
}
