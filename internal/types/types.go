package types

// EntityID — идентификатор сущности
type EntityID uint64
