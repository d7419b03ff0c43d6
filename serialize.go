package postag

import (
	"errors"
	"os"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/serializer"
)

func init() {
	serializer.RegisterTypedDeserializer((&Model{}).SerializerType(), DeserializeModel)
}

// DeserializeModel deserializes a Model.
func DeserializeModel(d []byte) (m *Model, err error) {
	defer essentials.AddCtxTo("deserialize model", &err)

	var tags []serializer.Serializer
	var words []serializer.Serializer
	var initProbs []float64
	var finalProbs []float64
	var transProbs []float64
	var emitProbs []float64
	err = serializer.DeserializeAny(d, &tags, &words, &initProbs, &finalProbs,
		&transProbs, &emitProbs)
	if err != nil {
		return nil, err
	}
	numTags := len(tags)
	numWords := len(words)
	if numTags == 0 {
		return nil, errors.New("empty tagset")
	}
	if len(initProbs) != numTags || len(finalProbs) != numTags ||
		len(transProbs) != numTags*numTags || len(emitProbs) != numTags*numWords {
		return nil, errors.New("invalid slice size")
	}

	tagNames, err := serializerStrings(tags)
	if err != nil {
		return nil, err
	}
	wordNames, err := serializerStrings(words)
	if err != nil {
		return nil, err
	}
	p := &Params{
		Init:  initProbs,
		Final: finalProbs,
		Trans: unflatten(transProbs, numTags, numTags),
		Emit:  unflatten(emitProbs, numTags, numWords),
	}
	return &Model{
		Tags:   NewTagSet(tagNames),
		Words:  NewVocab(wordNames),
		Params: p,
	}, nil
}

// SerializerType returns the unique ID used to serialize a
// Model with the serializer package.
func (m *Model) SerializerType() string {
	return "github.com/shaikhzhas/postag.Model"
}

// Serialize serializes the Model.
func (m *Model) Serialize() (data []byte, err error) {
	defer essentials.AddCtxTo("serialize model", &err)

	tags := make([]serializer.Serializer, m.Tags.Len())
	for i, name := range m.Tags.Names() {
		tags[i] = serializer.String(name)
	}
	words := make([]serializer.Serializer, m.Words.Len())
	for i, word := range m.Words.Words() {
		words[i] = serializer.String(word)
	}
	return serializer.SerializeAny(tags, words, m.Params.Init, m.Params.Final,
		flatten(m.Params.Trans), flatten(m.Params.Emit))
}

// SaveModel serializes a Model to a file.
func SaveModel(path string, m *Model) (err error) {
	defer essentials.AddCtxTo("save model", &err)
	data, err := serializer.SerializeAny(m)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadModel reads a Model saved by SaveModel.
func LoadModel(path string) (m *Model, err error) {
	defer essentials.AddCtxTo("load model", &err)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := serializer.DeserializeAny(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func serializerStrings(list []serializer.Serializer) ([]string, error) {
	res := make([]string, len(list))
	for i, s := range list {
		str, ok := s.(serializer.String)
		if !ok {
			return nil, errors.New("expected serializer.String")
		}
		res[i] = string(str)
	}
	return res, nil
}

func flatten(matrix [][]float64) []float64 {
	var res []float64
	for _, row := range matrix {
		res = append(res, row...)
	}
	return res
}

func unflatten(flat []float64, rows, cols int) [][]float64 {
	res := make([][]float64, rows)
	for i := range res {
		res[i] = flat[i*cols : (i+1)*cols]
	}
	return res
}
