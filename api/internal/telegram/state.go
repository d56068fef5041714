package telegram

import (
	"sync"

	"explain-this/api/internal/simplify"
)

// Levels remembers the reading level chosen in each chat. It lives in memory only.
type Levels struct {
	def simplify.Complexity
	m   sync.Map // chatID -> simplify.Complexity
}

func NewLevels(def simplify.Complexity) *Levels {
	return &Levels{def: def}
}

func (l *Levels) Get(chatID int64) simplify.Complexity {
	if v, ok := l.m.Load(chatID); ok {
		return v.(simplify.Complexity)
	}
	return l.def
}

func (l *Levels) Set(chatID int64, c simplify.Complexity) {
	l.m.Store(chatID, c)
}
