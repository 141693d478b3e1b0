package types

// Loader defines functions that loads committed state data
type Loader interface {
	Data(key []byte) []byte
}

type emptyLoader struct {
}

// newEmptyLoader is used for generating genesis state
func newEmptyLoader() Loader {
	return &emptyLoader{}
}

// Data returns nil
func (st *emptyLoader) Data(key []byte) []byte {
	return nil
}
