package dom

// MutationType is the kind of a MutationRecord.
type MutationType uint8

const (
	Attributes MutationType = iota + 1
	ChildList
	CharacterData
)

// String returns the record type name used by browsers.
func (t MutationType) String() string {
	switch t {
	case Attributes:
		return "attributes"
	case ChildList:
		return "childList"
	case CharacterData:
		return "characterData"
	default:
		return "unknown"
	}
}

// MutationRecord describes one change to the connected tree.
type MutationRecord struct {
	Type   MutationType
	Target Node

	// AttributeName is set for Attributes records.
	AttributeName string

	// OldValue is the previous attribute value or text, nil if there was
	// none.
	OldValue *string

	Added   []Node
	Removed []Node
}

// MutationObserver collects records for the connected part of a document
// until they are taken.
type MutationObserver struct {
	doc     *Document
	records []MutationRecord
}

// NewMutationObserver starts observing doc.
func NewMutationObserver(doc *Document) *MutationObserver {
	o := &MutationObserver{doc: doc}
	doc.observers = append(doc.observers, o)
	return o
}

// TakeRecords returns and clears the collected records.
func (o *MutationObserver) TakeRecords() []MutationRecord {
	out := o.records
	o.records = nil
	return out
}

// Disconnect stops observing.
func (o *MutationObserver) Disconnect() {
	obs := o.doc.observers
	for i, x := range obs {
		if x == o {
			o.doc.observers = append(obs[:i:i], obs[i+1:]...)
			break
		}
	}
	o.records = nil
}

// record delivers r to observers when its target is connected.
func (d *Document) record(r MutationRecord) {
	if len(d.observers) == 0 || !r.Target.IsConnected() {
		return
	}
	for _, o := range d.observers {
		o.records = append(o.records, r)
	}
}
