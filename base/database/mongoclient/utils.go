package mongoclient

import (
	"reflect"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
)

// MakeBsonM turns a struct of optional fields into a bson.M selector. Nil
// pointers and zero omitempty fields are skipped and pointers are unwrapped.
func MakeBsonM(selector interface{}) (bson.M, error) {
	val := reflect.ValueOf(selector)
	if val.Kind() == reflect.Ptr && val.Elem().Kind() == reflect.Struct {
		val = val.Elem()
	}

	m := bson.M{}
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)

		tag, err := bsoncodec.DefaultStructTagParser(val.Type().Field(i))
		switch {
		case err != nil:
			return nil, err
		case tag.Skip, !field.CanInterface():
			continue
		case tag.OmitEmpty && field.IsZero():
			continue
		case field.Kind() == reflect.Ptr:
			if !field.IsNil() {
				m[tag.Name] = field.Elem().Interface()
			}
		case !field.IsZero():
			m[tag.Name] = field.Interface()
		}
	}
	return m, nil
}
