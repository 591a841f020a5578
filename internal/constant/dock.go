package constant

// Physical dock doors on the shipping side of the warehouse. The range is
// fixed by the building layout.
const (
	DockDoorFirst = 4
	DockDoorLast  = 13
)

// DockDoors lists every door number in display order.
var DockDoors = func() []int {
	doors := make([]int, 0, DockDoorLast-DockDoorFirst+1)
	for d := DockDoorFirst; d <= DockDoorLast; d++ {
		doors = append(doors, d)
	}
	return doors
}()
