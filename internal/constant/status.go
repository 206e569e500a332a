package constant

// Activity statuses, mirroring the three board columns.
const (
	StatusTodo     = "todo"
	StatusDoing    = "doing"
	StatusFinished = "finished"
)

var Statuses = []string{StatusTodo, StatusDoing, StatusFinished}
