package timezone

import "time"

// Clock abstrai el reloj de pared para que los casos de uso
// no llamen a time.Now() directamente.
type Clock interface {
	Now() time.Time
	Today() time.Time
}

type wallClock struct {
	loc *time.Location
}

func NewClock(tz string) Clock {
	return wallClock{loc: Location(tz)}
}

func (c wallClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c wallClock) Today() time.Time {
	return DateOf(c.Now())
}

// FixedClock devuelve siempre el mismo instante. Solo para tests.
type FixedClock struct {
	Instant time.Time
}

func (c FixedClock) Now() time.Time {
	return c.Instant
}

func (c FixedClock) Today() time.Time {
	return DateOf(c.Instant)
}
