package hopscotch

//go:generate gtrace

//gtrace:gen
type traceMap struct {
	OnSet    func(key string, home int) traceMapSet
	OnRemove func(key string) func(removed bool)
	OnFull   func(key string)
}

//gtrace:gen
type traceMapSet struct {
	OnCollision func(occupant string)
	OnDisplace  func(from, to int)
	OnOverflow  func(index int)
	OnDone      func(index int)
}
