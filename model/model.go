package model

type Player struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Score int64  `json:"score"`
	Cards int    `json:"cards"`
	Owner bool   `json:"owner"`
}

type Room struct {
	ID        int64  `json:"id"`
	Players   int    `json:"players"`
	State     int    `json:"state"`
	StateDesc string `json:"stateDesc"`
	Creator   int64  `json:"creator"`
}
