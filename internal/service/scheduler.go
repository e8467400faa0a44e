package service

import (
	"math/rand/v2"
	"time"
)

// Scheduler difiere trabajo; separa el ritmo de la conversación de su lógica.
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}

type timerScheduler struct{}

// NewTimerScheduler devuelve un Scheduler basado en time.AfterFunc.
func NewTimerScheduler() Scheduler {
	return timerScheduler{}
}

func (timerScheduler) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}

// Pacing define las demoras simuladas de la conversación.
type Pacing struct {
	ReplyDelayMin time.Duration
	ReplyDelayMax time.Duration
	QuestionDelay time.Duration
}

// DefaultPacing responde entre 1 y 2 segundos y presenta cada pregunta tras 600ms.
var DefaultPacing = Pacing{
	ReplyDelayMin: time.Second,
	ReplyDelayMax: 2 * time.Second,
	QuestionDelay: 600 * time.Millisecond,
}

func (p Pacing) isZero() bool {
	return p.ReplyDelayMin == 0 && p.ReplyDelayMax == 0 && p.QuestionDelay == 0
}

// ReplyDelay sortea una demora uniforme en [ReplyDelayMin, ReplyDelayMax].
func (p Pacing) ReplyDelay() time.Duration {
	if p.ReplyDelayMax <= p.ReplyDelayMin {
		return p.ReplyDelayMin
	}
	return p.ReplyDelayMin + rand.N(p.ReplyDelayMax-p.ReplyDelayMin+1)
}
