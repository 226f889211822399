package domain

import "context"

// Room belongs to exactly one theater. TheaterName mirrors the theaters
// row the room is joined against; the scheduling engine never creates or
// mutates rooms.
type Room struct {
	ID          int
	TheaterName string
	RoomName    string
	RoomType    string
}

type TheaterRepository interface {
	GetRoomsByTheater(ctx context.Context, theaterId int) ([]Room, error)
}
