package components

const (
	ColumnWidth = 30 // ColumnWidth is the outer width of a column, borders included
	ColumnGap   = 1  // blank cells between columns

	columnFrameX = 4 // left/right border plus padding
	columnFrameY = 2 // top and bottom border
	cardFrameX   = 4
	cardHeight   = 3 // one line of content between two borders

	AddTaskLabel   = "+ add task"
	AddColumnLabel = "[+ column]"
)
