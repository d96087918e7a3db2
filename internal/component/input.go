package component

// Input is the host input sampled once at the start of a tick.
type Input struct {
	Up     bool    `msgpack:"u,omitempty"`
	Down   bool    `msgpack:"d,omitempty"`
	Left   bool    `msgpack:"l,omitempty"`
	Right  bool    `msgpack:"r,omitempty"`
	AimX   float64 `msgpack:"ax"`
	AimY   float64 `msgpack:"ay"`
	Firing bool    `msgpack:"f,omitempty"`
}
