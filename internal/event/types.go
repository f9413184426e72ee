// internal/event/types.go
package event

const (
	GestureStarted   EventType = "GestureStarted"   // начат новый прямоугольник или захвачена ручка
	RectangleResized EventType = "RectangleResized" // изменились ширина/высота
	RadiusChanged    EventType = "RadiusChanged"    // изменился радиус скругления
	GestureEnded     EventType = "GestureEnded"     // кнопка отпущена
)

// EditorEvents lists every type the editor emits, in lifecycle order.
var EditorEvents = []EventType{GestureStarted, RectangleResized, RadiusChanged, GestureEnded}
