package models

import "errors"

// ErrOrderNotFound возвращается, когда заказа с таким id нет в журнале.
var ErrOrderNotFound = errors.New("заказ не найден")
