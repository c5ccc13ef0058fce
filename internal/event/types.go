// internal/event/types.go
package event

const (
	PlaneDestroyed EventType = "PlaneDestroyed" // Ракета догнала самолёт, Data — счёт (int)
	NewHighScore   EventType = "NewHighScore"   // Побит рекорд, Data — новый рекорд (int)
	GameRestarted  EventType = "GameRestarted"
)
