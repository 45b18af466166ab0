package config

// Region identifies a clickable area of the player, in normalized device coordinates.
type Region int

const (
	RegionNone Region = iota
	RegionTape
	RegionEject
	RegionPlay
	RegionPause
)

func (r Region) String() string {
	switch r {
	case RegionTape:
		return "tape"
	case RegionEject:
		return "eject"
	case RegionPlay:
		return "play"
	case RegionPause:
		return "pause"
	default:
		return "none"
	}
}

// Phase is the animation phase the deck is currently in. Exactly one is active.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseCoverOpening
	PhaseCoverClosing
	PhaseTapeInserting
	PhaseTapeEjecting
)

func (p Phase) String() string {
	switch p {
	case PhaseCoverOpening:
		return "cover-opening"
	case PhaseCoverClosing:
		return "cover-closing"
	case PhaseTapeInserting:
		return "tape-inserting"
	case PhaseTapeEjecting:
		return "tape-ejecting"
	default:
		return "idle"
	}
}

// Object indices. Render and update order follow these values.
const (
	ObjectIdleScreen = iota
	ObjectHousing
	ObjectCover
	ObjectTape
	ObjectCount
)

// Rect is an open axis-aligned rectangle: points on the border are outside.
type Rect struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Contains reports whether (x, y) lies strictly inside r.
func (r Rect) Contains(x, y float64) bool {
	return x > r.MinX && x < r.MaxX && y > r.MinY && y < r.MaxY
}

// HitRegion pairs a region with its bounds.
type HitRegion struct {
	Region Region
	Bounds Rect
}

// ObjectConfig holds the start transform of a renderable object.
type ObjectConfig struct {
	Name        string
	Translation [3]float64
	Rotation    [3]float64
	Scale       [3]float64
	Opacity     float64
	TextureSlot int
}

// DeckConfig contains the tape/cover animation constants and hit regions
type DeckConfig struct {
	// Cover slide along x (per frame)
	CoverStep    float64
	CoverClosedX float64 // Resting position over the tape
	CoverOpenX   float64 // Slid fully aside

	// Tape motion (per frame, shared by rotation and translation)
	TapeStep         float64
	TapeOutsideRotX  float64 // Lying flat in front of the player
	TapeInsertedRotX float64 // Upright, facing the slot
	TapeOutsideZ     float64
	TapeInsertedZ    float64

	Regions []HitRegion
	Objects [ObjectCount]ObjectConfig
}

// Deck is the global deck configuration
var Deck DeckConfig

func init() {
	Deck = DeckConfig{
		CoverStep:    0.005,
		CoverClosedX: -0.29,
		CoverOpenX:   -0.8,

		TapeStep:         0.015,
		TapeOutsideRotX:  -1.6,
		TapeInsertedRotX: 0,
		TapeOutsideZ:     -0.45,
		TapeInsertedZ:    1.2,

		Regions: []HitRegion{
			{Region: RegionTape, Bounds: Rect{MinX: -0.525, MaxX: -0.05, MinY: -0.6, MaxY: -0.3}},
			{Region: RegionEject, Bounds: Rect{MinX: 0.3125, MaxX: 0.44, MinY: -0.2, MaxY: 0}},
			{Region: RegionPlay, Bounds: Rect{MinX: 0.0125, MaxX: 0.135, MinY: -0.2, MaxY: 0}},
			{Region: RegionPause, Bounds: Rect{MinX: 0.16, MaxX: 0.2825, MinY: -0.2, MaxY: 0}},
		},

		Objects: [ObjectCount]ObjectConfig{
			ObjectIdleScreen: {
				Name:        "idle-screen",
				Translation: [3]float64{-0.05, 0.1, -1},
				Scale:       [3]float64{1, 1, 1},
				Opacity:     1,
				TextureSlot: 0,
			},
			ObjectHousing: {
				Name:        "housing",
				Translation: [3]float64{-0.05, -0.18, -1},
				Scale:       [3]float64{1, 0.2, 1},
				Opacity:     1,
				TextureSlot: 1,
			},
			ObjectCover: {
				Name:        "cover",
				Translation: [3]float64{-0.29, -0.13, -0.45},
				Rotation:    [3]float64{-1.6, 0, 0},
				Scale:       [3]float64{0.475, 0.1, 0.3},
				Opacity:     1,
				TextureSlot: 2,
			},
			ObjectTape: {
				Name:        "tape",
				Translation: [3]float64{-0.29, -0.13, -0.45},
				Rotation:    [3]float64{-1.6, 0, 0},
				Scale:       [3]float64{0.475, 0.1, 0.3},
				Opacity:     1,
				TextureSlot: 3,
			},
		},
	}
}
