package entities

import (
	"strings"

	"github.com/pkg/errors"
)

// Coded is implemented by every enumerated field. Code is the ordinal the
// monitoring platform expects in the document.
type Coded interface {
	Code() int
}

type Unit int

const (
	UnitBytesBandwidth Unit = iota
	UnitBytesMemory
	UnitBytesDisk
	UnitTemperature
	UnitPercent
	UnitTimeResponse
	UnitTimeSeconds
	UnitCustom
	UnitCount
	UnitCPU
	UnitBytesFile
	UnitSpeedDisk
	UnitSpeedNet
	UnitTimeHours
)

var unitNames = []string{
	"BytesBandwidth",
	"BytesMemory",
	"BytesDisk",
	"Temperature",
	"Percent",
	"TimeResponse",
	"TimeSeconds",
	"Custom",
	"Count",
	"CPU",
	"BytesFile",
	"SpeedDisk",
	"SpeedNet",
	"TimeHours",
}

type SpeedSize int

const (
	SpeedSizeOne SpeedSize = iota
	SpeedSizeKilo
	SpeedSizeMega
	SpeedSizeGiga
	SpeedSizeTera
	SpeedSizeByte
	SpeedSizeKiloByte
	SpeedSizeMegaByte
	SpeedSizeGigaByte
	SpeedSizeTeraByte
	SpeedSizeBit
	SpeedSizeKiloBit
	SpeedSizeMegaBit
	SpeedSizeGigaBit
	SpeedSizeTeraBit
)

var speedSizeNames = []string{
	"One",
	"Kilo",
	"Mega",
	"Giga",
	"Tera",
	"Byte",
	"KiloByte",
	"MegaByte",
	"GigaByte",
	"TeraByte",
	"Bit",
	"KiloBit",
	"MegaBit",
	"GigaBit",
	"TeraBit",
}

type SpeedTime int

const (
	SpeedTimeSecond SpeedTime = iota
	SpeedTimeMinute
	SpeedTimeHour
	SpeedTimeDay
)

var speedTimeNames = []string{"Second", "Minute", "Hour", "Day"}

// Mode selects whether a channel value is absolute or a running counter.
type Mode int

const (
	ModeAbsolute Mode = iota
	ModeDifference
)

var modeNames = []string{"Absolute", "Difference"}

// YesNo is the ordinal form of the platform's boolean-like fields.
type YesNo int

const (
	No YesNo = iota
	Yes
)

var yesNoNames = []string{"No", "Yes"}

// YesNoOf maps a boolean onto its ordinal form.
func YesNoOf(value bool) YesNo {
	if value {
		return Yes
	}
	return No
}

func (u Unit) Code() int           { return int(u) }
func (s SpeedSize) Code() int      { return int(s) }
func (s SpeedTime) Code() int      { return int(s) }
func (m Mode) Code() int           { return int(m) }
func (y YesNo) Code() int          { return int(y) }
func (u Unit) String() string      { return enumName(unitNames, int(u)) }
func (m Mode) String() string      { return enumName(modeNames, int(m)) }
func (y YesNo) String() string     { return enumName(yesNoNames, int(y)) }
func (s SpeedSize) String() string { return enumName(speedSizeNames, int(s)) }
func (s SpeedTime) String() string { return enumName(speedTimeNames, int(s)) }

func ParseUnit(name string) (Unit, error) {
	code, err := parseEnum("unit", name, unitNames)
	return Unit(code), err
}

func ParseSpeedSize(name string) (SpeedSize, error) {
	code, err := parseEnum("speed size", name, speedSizeNames)
	return SpeedSize(code), err
}

func ParseSpeedTime(name string) (SpeedTime, error) {
	code, err := parseEnum("speed time", name, speedTimeNames)
	return SpeedTime(code), err
}

func ParseMode(name string) (Mode, error) {
	code, err := parseEnum("mode", name, modeNames)
	return Mode(code), err
}

func enumName(names []string, code int) string {
	if code < 0 || code >= len(names) {
		return "Unknown"
	}
	return names[code]
}

func parseEnum(kind, name string, names []string) (int, error) {
	for code, candidate := range names {
		if strings.EqualFold(candidate, name) {
			return code, nil
		}
	}
	return 0, errors.Wrapf(ErrValidation, "unknown %s %q", kind, name)
}
