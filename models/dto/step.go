package dto

type Direction string

const (
	Forward  Direction = "forward"
	Backward Direction = "backward"
)

// Step описывает одно посещение узла при обходе цепочки
type Step struct {
	Direction Direction `json:"direction"`
	ID        int64     `json:"id"`
	Value     int64     `json:"value"`
}

func NewStep(direction Direction, id, value int64) Step {
	return Step{Direction: direction, ID: id, Value: value}
}
