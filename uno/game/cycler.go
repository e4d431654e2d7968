package game

type Direction int

const (
	Forward  Direction = 1
	Backward Direction = -1
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Cycler tracks whose turn it is over a circle of size seats.
type Cycler struct {
	size      int
	current   int
	direction Direction
}

func NewCycler(size int) *Cycler {
	return &Cycler{
		size:      size,
		direction: Forward,
	}
}

func (c *Cycler) Current() int {
	return c.current
}

func (c *Cycler) Direction() Direction {
	return c.direction
}

func (c *Cycler) Size() int {
	return c.size
}

// Peek returns the seat one step ahead without moving.
func (c *Cycler) Peek() int {
	if c.size == 0 {
		return 0
	}
	return (c.current + int(c.direction) + c.size) % c.size
}

func (c *Cycler) Next() int {
	c.current = c.Peek()
	return c.current
}

func (c *Cycler) Reverse() {
	switch c.direction {
	case Forward:
		c.direction = Backward
	case Backward:
		c.direction = Forward
	}
}

// Reset puts the cycler back on seat 0, moving forward.
func (c *Cycler) Reset(size int) {
	c.size = size
	c.current = 0
	c.direction = Forward
}

// Remove drops a seat. When the current seat is removed, current lands on the
// seat that would have played next in the current direction.
func (c *Cycler) Remove(index int) {
	if index < 0 || index >= c.size {
		return
	}
	c.size--
	if c.size == 0 {
		c.current = 0
		return
	}
	switch {
	case index < c.current:
		c.current--
	case index == c.current:
		if c.direction == Backward {
			c.current = (c.current - 1 + c.size) % c.size
		} else {
			c.current = c.current % c.size
		}
	}
}
