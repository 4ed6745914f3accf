package feed

// Builtin returns the bundled solar-system dataset so the viewer runs
// without an external feed file. Distances are in centi-AU, radii in
// thousands of km, periods in Earth days, velocities are mean orbital
// speeds in km/s.
func Builtin() []Record {
	return []Record{
		{Name: "Mercury", Size: 2.4, Distance: 38.7, Period: 87.97,
			Metadata: map[string]any{"velocity_kps": 47.36}},
		{Name: "Venus", Size: 6.1, Distance: 72.3, Period: 224.70,
			Metadata: map[string]any{"velocity_kps": 35.02}},
		{Name: "Earth", Size: 6.4, Distance: 100.0, Period: 365.25,
			Metadata: map[string]any{"velocity_kps": 29.78}},
		{Name: "Mars", Size: 3.4, Distance: 152.4, Period: 686.97,
			Metadata: map[string]any{"velocity_kps": 24.08}},
		{Name: "Jupiter", Size: 69.9, Distance: 520.4, Period: 4332.59,
			Metadata: map[string]any{"velocity_kps": 13.06}},
		{Name: "Saturn", Size: 58.2, Distance: 958.2, Period: 10759.22,
			Metadata: map[string]any{"velocity_kps": 9.68}},
		{Name: "Uranus", Size: 25.4, Distance: 1920.1, Period: 30688.5,
			Metadata: map[string]any{"velocity_kps": 6.80}},
		{Name: "Neptune", Size: 24.6, Distance: 3004.7, Period: 60182,
			Metadata: map[string]any{"velocity_kps": 5.43}},
	}
}
