package types

// EntityID — идентификатор сущности в пределах одной сессии
type EntityID uint64
