package blockscene

import "github.com/TheBitDrifter/table"

type factory struct{}

var Factory factory

func (f factory) NewStorage(rows, columns int) Storage {
	return newStorage(table.Factory.NewSchema(), rows, columns)
}

func (f factory) NewPattern() PatternBuilder {
	return newPatternBuilder()
}

func (f factory) NewCursor(storage Storage, components ...Component) *Cursor {
	return newCursor(storage, components...)
}

func (f factory) NewTextureManager(loader TextureLoader, capacity int) *TextureManager {
	return newTextureManager(loader, capacity)
}

func (f factory) NewScene(services Services, cfg Config) (*Scene, error) {
	return newScene(services, cfg)
}

func FactoryNewComponent[T any]() AccessibleComponent[T] {
	iden := table.FactoryNewElementType[T]()
	return AccessibleComponent[T]{
		Component: iden,
		Accessor:  table.FactoryNewAccessor[T](iden),
	}
}

func FactoryNewCache[T any](cap int) Cache[T] {
	return &SimpleCache[T]{
		itemIndices: make(map[string]int),
		maxCapacity: cap,
	}
}
