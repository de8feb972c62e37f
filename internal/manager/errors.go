package manager

import "errors"

var ErrManagerNotFound = errors.New("manager not found")
