package http

// bannerDTO is the GET / response.
type bannerDTO struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

// pinDTO is the request body of enterPIN, setPIN and close.
type pinDTO struct {
	Pin string `json:"pin"`
}

// lockerDTO is the GET /locker/:lockerId response.
type lockerDTO struct {
	LockerID int64    `json:"lockerId"`
	Cells    []string `json:"cells"`
}

// cellDTO is the response of every cell-level endpoint. Pin is omitted on
// open/close responses, which carry no PIN information.
type cellDTO struct {
	LockerID int64  `json:"lockerId"`
	CellID   string `json:"cellId"`
	Status   string `json:"status"`
	Pin      string `json:"pin,omitempty"`
}

// errorDTO is the uniform error body.
type errorDTO struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
