package cmd

import (
	"fmt"
	"strconv"
	"strings"
)

type Config struct {
	HTTPPort      string
	RedisURL      string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	Lockers       string
	AuditSchedule string
}

// LockerSeed is one locker's bootstrap definition.
type LockerSeed struct {
	LockerID int64
	Cells    []string
}

// LockerSeeds parses the LOCKERS spec, e.g. "1234:C-001,C-002;1235:C-003".
// Lockers are semicolon-separated, each entry is lockerId, colon, a
// comma-separated cell list.
func (c Config) LockerSeeds() ([]LockerSeed, error) {
	if strings.TrimSpace(c.Lockers) == "" {
		return nil, nil
	}

	var seeds []LockerSeed
	for _, entry := range strings.Split(c.Lockers, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		idPart, cellsPart, found := strings.Cut(entry, ":")
		if !found {
			return nil, fmt.Errorf("locker seed %q: missing ':' separator", entry)
		}

		lockerID, err := strconv.ParseInt(strings.TrimSpace(idPart), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("locker seed %q: bad locker ID: %w", entry, err)
		}

		var cells []string
		for _, cellID := range strings.Split(cellsPart, ",") {
			cellID = strings.TrimSpace(cellID)
			if cellID != "" {
				cells = append(cells, cellID)
			}
		}
		if len(cells) == 0 {
			return nil, fmt.Errorf("locker seed %q: no cells", entry)
		}

		seeds = append(seeds, LockerSeed{LockerID: lockerID, Cells: cells})
	}

	return seeds, nil
}
