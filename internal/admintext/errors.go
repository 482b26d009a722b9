package admintext

import "errors"

var (
	ErrInvalidLine  = errors.New("admintext: invalid line")
	ErrInvalidDate  = errors.New("admintext: invalid date")
	ErrInvalidRange = errors.New("admintext: range ends before it starts")
	ErrInvalidRate  = errors.New("admintext: rate must be a positive number")
)
