package engine

// InRange reports whether |a-b| <= tol.
func InRange(a, b, tol int) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}

// Collides reports whether an attacker at (ax, alane) connects with a defender
// at (dx, dlane): same lane and horizontal distance within tol, inclusive.
// Inactive positions never collide.
func Collides(ax, alane, dx, dlane, tol int) bool {
	if ax == Inactive || dx == Inactive {
		return false
	}
	return alane == dlane && InRange(ax, dx, tol)
}
