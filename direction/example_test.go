package direction_test

import (
	"fmt"

	"github.com/katalvlaran/gridwalk/direction"
)

// ExampleDir_TurnRight walks a full clockwise turn starting at North.
func ExampleDir_TurnRight() {
	d := direction.North
	for i := 0; i < 4; i++ {
		fmt.Print(d, " ")
		d = d.TurnRight()
	}
	fmt.Println(d)
	// Output:
	// North East South West North
}
