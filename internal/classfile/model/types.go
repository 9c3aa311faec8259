package model

// PoolEntryKind is the tag byte of a constant-pool entry, as defined by
// the class-file format (specification revision 13).
type PoolEntryKind byte

const (
	KindUtf8               PoolEntryKind = 1
	KindInteger            PoolEntryKind = 3
	KindFloat              PoolEntryKind = 4
	KindLong               PoolEntryKind = 5
	KindDouble             PoolEntryKind = 6
	KindClass              PoolEntryKind = 7
	KindString             PoolEntryKind = 8
	KindFieldRef           PoolEntryKind = 9
	KindMethodRef          PoolEntryKind = 10
	KindInterfaceMethodRef PoolEntryKind = 11
	KindNameAndType        PoolEntryKind = 12
	KindMethodHandle       PoolEntryKind = 15
	KindMethodType         PoolEntryKind = 16
	KindDynamic            PoolEntryKind = 17
	KindInvokeDynamic      PoolEntryKind = 18
	KindModule             PoolEntryKind = 19
	KindPackage            PoolEntryKind = 20
)

func (k PoolEntryKind) String() string {
	switch k {
	case KindUtf8:
		return "Utf8"
	case KindInteger:
		return "Integer"
	case KindFloat:
		return "Float"
	case KindLong:
		return "Long"
	case KindDouble:
		return "Double"
	case KindClass:
		return "Class"
	case KindString:
		return "String"
	case KindFieldRef:
		return "FieldRef"
	case KindMethodRef:
		return "MethodRef"
	case KindInterfaceMethodRef:
		return "InterfaceMethodRef"
	case KindNameAndType:
		return "NameAndType"
	case KindMethodHandle:
		return "MethodHandle"
	case KindMethodType:
		return "MethodType"
	case KindDynamic:
		return "Dynamic"
	case KindInvokeDynamic:
		return "InvokeDynamic"
	case KindModule:
		return "Module"
	case KindPackage:
		return "Package"
	default:
		return "Unknown"
	}
}

// MappingEntry is one (from, to) pair inside a built MappingTable.
// Indices are 1-based; index 0 is never assigned to an entry.
type MappingEntry struct {
	From []byte
	To   []byte
}

// Replacement records a single applied match: which mapping entry fired,
// and at which whole-file byte offset it started.
type Replacement struct {
	MappingIndex int
	MatchOffset  int
}

// PatchRecord describes every replacement found inside one Utf8
// constant-pool entry.
type PatchRecord struct {
	// EntryBodyOffset is the byte offset of the entry's payload, i.e.
	// immediately after its 2-byte length prefix.
	EntryBodyOffset int

	// NetLengthDelta is the signed sum of len(to)-len(from) over every
	// replacement in this entry.
	NetLengthDelta int

	// Replacements is ordered by increasing MatchOffset.
	Replacements []Replacement
}

// PatchPlan is the full set of PatchRecords for one Transform call, in
// constant-pool order.
type PatchPlan []PatchRecord

// TotalDelta sums NetLengthDelta across every record in the plan.
func (p PatchPlan) TotalDelta() int {
	total := 0
	for _, rec := range p {
		total += rec.NetLengthDelta
	}
	return total
}
