package props

// TextValue is the payload of a TextProperty, dispatched by
// TextHistoryType. Recursive: Named/Transform variants box another
// TextValue as their source.
type TextValue interface{ isTextValue() }

// TextBaseValue is the BASE history variant: no flags wrapper, just the
// three identifying strings.
type TextBaseValue struct {
	Namespace string
	Key       string
	Value     string
}

func (TextBaseValue) isTextValue() {}

// TextArgument is one entry of a NAMED/ARGUMENT variant's argument list.
// For ValueType == TextArgumentInt, IntValue/IntUnknown are populated;
// for ValueType == TextArgumentText, Text is populated instead.
type TextArgument struct {
	Name       string
	ValueType  TextArgumentType
	IntValue   int32
	IntUnknown int32
	Text       TextValue
}

type TextNamedValue struct {
	Flags        uint32
	History      TextHistoryType
	SourceFormat TextValue
	Arguments    []TextArgument
}

func (TextNamedValue) isTextValue() {}

type TextTransformValue struct {
	Flags         uint32
	History       TextHistoryType
	Source        TextValue
	TransformType uint8
}

func (TextTransformValue) isTextValue() {}

type TextStringTableEntryValue struct {
	Flags    uint32
	History  TextHistoryType
	TableID  string
	TableKey string
}

func (TextStringTableEntryValue) isTextValue() {}

type TextNoneValue struct {
	Flags        uint32
	History      TextHistoryType
	HasInvariant bool
	Value        string
}

func (TextNoneValue) isTextValue() {}
