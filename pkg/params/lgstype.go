package params

// LgsType selects the logistics provider for convenience-store pickup.
type LgsType string

const (
	// LgsFamily is FamilyMart.
	LgsFamily LgsType = "FAMILY"
	// LgsUnimart is 7-ELEVEN.
	LgsUnimart LgsType = "UNIMART"
	// LgsHiLife is Hi-Life.
	LgsHiLife LgsType = "HILIFE"
	// LgsOKMart is OK mart.
	LgsOKMart LgsType = "OKMART"
)

// LgsTypes lists the accepted logistics providers.
func LgsTypes() []LgsType {
	return []LgsType{LgsFamily, LgsUnimart, LgsHiLife, LgsOKMart}
}

// Valid reports whether l is one of the accepted provider codes.
func (l LgsType) Valid() bool {
	switch l {
	case LgsFamily, LgsUnimart, LgsHiLife, LgsOKMart:
		return true
	}
	return false
}

// String returns the wire value.
func (l LgsType) String() string {
	return string(l)
}
