package chess

// ==========================
// Move helpers for drivers
// ==========================

// PushMove makes the move and pushes its Undo onto the caller's stack.
func (b *Board) PushMove(m Move, stack *[]Undo) {
	*stack = append(*stack, b.MakeMove(m))
}

// PopMove undoes the last move pushed with PushMove.
// It panics if the stack is empty.
func (b *Board) PopMove(stack *[]Undo) {
	n := len(*stack)
	if n == 0 {
		panic("chess.PopMove: empty stack")
	}
	u := (*stack)[n-1]
	*stack = (*stack)[:n-1]
	b.UnmakeMove(u)
}

// Apply plays a move and returns a closure that takes it back. The closure
// panics if called twice or out of order.
func (b *Board) Apply(m Move) func() {
	u := b.MakeMove(m)
	return func() { b.UnmakeMove(u) }
}
