package value

func (v Integer) Equals(other Value) bool {
	o, ok := other.(Integer)
	return ok && o == v
}

func (v Str) Equals(other Value) bool {
	o, ok := other.(Str)
	return ok && o == v
}

func (v Bool) Equals(other Value) bool {
	o, ok := other.(Bool)
	return ok && o == v
}

func (Null) Equals(other Value) bool {
	_, ok := other.(Null)
	return ok
}
