// Package launchd renders and manages the per-frequency launchd agents
// that schedule notes backups.
package launchd

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"notesbackup/src/schedule"
)

const labelPrefix = "com.slyphon.notes.backup."

// Label returns the launchd label of the agent for f.
func Label(f schedule.Frequency) string {
	return labelPrefix + string(f)
}

// Render produces the agent plist for f. The job runs the backup script
// through pipenv from installDir, with the pipenv environment pinned the
// same way the launcher pins it.
func Render(f schedule.Frequency, installDir, pipenvPath string) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateDirective(`DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd"`)

	plist := doc.CreateElement("plist")
	plist.CreateAttr("version", "1.0")
	dict := plist.CreateElement("dict")

	putBool(dict, "Disabled", false)

	dict.CreateElement("key").SetText("EnvironmentVariables")
	env := dict.CreateElement("dict")
	putString(env, "PIPENV_DEFAULT_PYTHON_VERSION", "/usr/bin/python3")
	putString(env, "PIPENV_NOSPIN", "1")
	putString(env, "PIPENV_VENV_IN_PROJECT", "1")

	putString(dict, "Label", Label(f))
	putBool(dict, "KeepAlive", false)

	dict.CreateElement("key").SetText("ProgramArguments")
	args := dict.CreateElement("array")
	for _, a := range []string{pipenvPath, "run", "./backup_notes.py", "--freq=" + string(f), "-v"} {
		args.CreateElement("string").SetText(a)
	}

	putBool(dict, "RunAtLoad", true)

	dict.CreateElement("key").SetText("StartCalendarInterval")
	interval := dict.CreateElement("dict")
	iv := schedule.Interval(f)
	putOptInt(interval, "Minute", iv.Minute)
	putOptInt(interval, "Hour", iv.Hour)
	putOptInt(interval, "Day", iv.Day)
	putOptInt(interval, "Weekday", iv.Weekday)
	putOptInt(interval, "Month", iv.Month)

	putString(dict, "WorkingDirectory", installDir)

	doc.IndentTabs()
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("launchd: render plist for %s: %w", f, err)
	}
	return out, nil
}

func putString(dict *etree.Element, key, value string) {
	dict.CreateElement("key").SetText(key)
	dict.CreateElement("string").SetText(value)
}

func putBool(dict *etree.Element, key string, value bool) {
	dict.CreateElement("key").SetText(key)
	if value {
		dict.CreateElement("true")
	} else {
		dict.CreateElement("false")
	}
}

func putOptInt(dict *etree.Element, key string, value *int) {
	if value == nil {
		return
	}
	dict.CreateElement("key").SetText(key)
	dict.CreateElement("integer").SetText(strconv.Itoa(*value))
}
