package anim

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// ReportEnergy formats the per-frame diagnostic line, prints it to
// stdout, and appends it to logPath when one is configured. The log
// file is opened, appended, and closed on every call; no handle is
// held across frames. The session truncates the file before frame 0.
// I/O failures propagate and abort the session.
func ReportEnergy(frame int, energy float64, logPath string) error {
	line := fmt.Sprintf("Step %d: Total Energy is %s", frame, formatEnergy(energy))
	fmt.Println(line)

	if logPath == "" {
		return nil
	}
	f, err := os.OpenFile(logPath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(line + "\n"); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// formatEnergy renders a float with a guaranteed decimal point, so an
// integral energy reads "3.0" rather than "3".
func formatEnergy(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") && !math.IsInf(v, 0) && !math.IsNaN(v) {
		s += ".0"
	}
	return s
}
