package domain

// Vehicle describes the single vehicle a route is planned for.
// Capacity is advisory metadata carried through to output; route
// construction does not enforce it against summed demand quantities.
type Vehicle struct {
	Depot    Location
	Capacity int
}
