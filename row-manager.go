package swipe

import (
	"fmt"

	"gioui.org/layout"
	"git.sr.ht/~gioverse/swipe/widget"
)

// RowID uniquely identifies a row of content.
type RowID string

// Row is a type that can be presented by a RowManager.
type Row interface {
	// ID returns a unique identifier for the Row. Swipe state is kept per
	// ID, so two rows sharing an ID share their swipe position.
	ID() RowID
}

// Configurator binds swipe state to the data of a Row: it installs the
// row's buttons and delegate. It is called whenever a state is bound to a
// row it was not previously bound to. The state is then closed and holds no
// buttons, delegate or thresholds from any earlier row.
type Configurator func(current Row, state *widget.SwipeRow)

// Presenter transforms the data for a Row, together with its swipe state,
// into a widget.
type Presenter func(current Row, state *widget.SwipeRow) layout.Widget

// RowManager presents rows of swipeable content, keeping one SwipeRow state
// per row ID and recycling the state of rows that leave the list.
type RowManager struct {
	// Rows is the list of data to present.
	Rows []Row
	// configure binds a state to the row it will present.
	configure Configurator
	// presenter transforms a single Row into a presentable widget.
	presenter Presenter
	// rowState maps the rows presented so far to their state.
	rowState map[RowID]*widget.SwipeRow
	// pool holds released state awaiting reuse.
	pool []*widget.SwipeRow
}

// NewManager constructs a manager with the given hooks. Both hooks are
// required.
func NewManager(configure Configurator, presenter Presenter) *RowManager {
	switch {
	case configure == nil:
		panic(fmt.Errorf("must provide an implementation of Configurator"))
	case presenter == nil:
		panic(fmt.Errorf("must provide an implementation of Presenter"))
	}
	return &RowManager{
		configure: configure,
		presenter: presenter,
		rowState:  make(map[RowID]*widget.SwipeRow),
	}
}

// Layout the Row at position index within the manager's Row list.
func (m *RowManager) Layout(gtx layout.Context, index int) layout.Dimensions {
	data := m.Rows[index]
	return m.presenter(data, m.bind(data))(gtx)
}

// bind returns the state for data, taking it from the pool or allocating
// it if the row has none yet.
func (m *RowManager) bind(data Row) *widget.SwipeRow {
	id := data.ID()
	if state, ok := m.rowState[id]; ok {
		return state
	}
	var state *widget.SwipeRow
	if n := len(m.pool); n > 0 {
		state = m.pool[n-1]
		m.pool = m.pool[:n-1]
	} else {
		state = &widget.SwipeRow{}
	}
	m.configure(data, state)
	m.rowState[id] = state
	return state
}

// Len returns the number of rows managed by this manager.
func (m *RowManager) Len() int {
	return len(m.Rows)
}

// State returns the swipe state bound to id, if any.
func (m *RowManager) State(id RowID) (*widget.SwipeRow, bool) {
	state, ok := m.rowState[id]
	return state, ok
}

// Release unbinds the state of id, clearing it and making it available to
// other rows. The next row bound to it starts from a zero configuration.
func (m *RowManager) Release(id RowID) {
	state, ok := m.rowState[id]
	if !ok {
		return
	}
	delete(m.rowState, id)
	state.Clear()
	m.pool = append(m.pool, state)
}

// Prune releases the state of every row no longer present in Rows.
func (m *RowManager) Prune() {
	present := make(map[RowID]bool, len(m.Rows))
	for _, r := range m.Rows {
		present[r.ID()] = true
	}
	for id := range m.rowState {
		if !present[id] {
			m.Release(id)
		}
	}
}
