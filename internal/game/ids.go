package game

// IDGenerator hands out monotonic ids per entity kind.
// Ids are never reused for the lifetime of the generator, including across
// settings changes and restarts.
type IDGenerator struct {
	player int
	paddle int
	ball   int
}

// NextPlayer returns the next player id.
func (g *IDGenerator) NextPlayer() int {
	g.player++
	return g.player
}

// NextPaddle returns the next paddle id.
func (g *IDGenerator) NextPaddle() int {
	g.paddle++
	return g.paddle
}

// NextBall returns the next ball id.
func (g *IDGenerator) NextBall() int {
	g.ball++
	return g.ball
}
