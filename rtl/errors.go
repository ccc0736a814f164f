package rtl

import "fmt"

// DanglingVarError is the panic value raised when a variable id is
// looked up in a Builder that did not create it.
type DanglingVarError struct {
	VarID int
}

func (e *DanglingVarError) Error() string {
	return fmt.Sprintf("rtl: variable %d used outside its elaboration scope", e.VarID)
}

// UseAfterElaborateError is the panic value raised when Assign/When/Display/etc. are
// called on a Builder that has already been finalized by Elaborate.
type UseAfterElaborateError struct{}

func (e *UseAfterElaborateError) Error() string {
	return "rtl: builder used after Elaborate"
}
