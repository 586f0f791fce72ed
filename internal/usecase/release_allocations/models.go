package release_allocations

// Request модель запроса на освобождение инвентаря
type Request struct {
	RequestID int64 // ID запроса инвентаря
}

// Response модель ответа на освобождение
type Response struct {
	RequestID int64  // ID запроса
	Status    string // Всегда released после успешного вызова

	// AlreadyReleased true, когда запрос уже был освобождён ранее
	// и вызов ничего не менял (идемпотентный no-op)
	AlreadyReleased bool

	// ReleasedQuantityByID сколько единиц вернулось в пул по каждому
	// предмету этим вызовом; пусто для повторного освобождения
	ReleasedQuantityByID map[int64]int
}
