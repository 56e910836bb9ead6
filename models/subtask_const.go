package models

type SubtaskStatus string

const (
	SubtaskStatusOpen       SubtaskStatus = "open"
	SubtaskStatusInProgress SubtaskStatus = "inprogress"
	SubtaskStatusDone       SubtaskStatus = "done"
	SubtaskStatusCancelled  SubtaskStatus = "cancel"
)

var subtaskStatusHumanName = map[SubtaskStatus]string{
	SubtaskStatusOpen:       "Open",
	SubtaskStatusInProgress: "In progress",
	SubtaskStatusDone:       "Done",
	SubtaskStatusCancelled:  "Cancelled",
}

func (s SubtaskStatus) ToHuman() string {
	if human, exist := subtaskStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s SubtaskStatus) IsValid() bool {
	_, exist := subtaskStatusHumanName[s]
	return exist
}

// UATResult codes follow the original wire values: 1 passed, 2 failed.
type UATResult int

const (
	UATResultPassed UATResult = 1
	UATResultFailed UATResult = 2
)

func (r UATResult) IsValid() bool {
	return r == UATResultPassed || r == UATResultFailed
}

// ListTab selects the IT staff list bucket.
type ListTab int

const (
	ListTabOpen     ListTab = 0
	ListTabApproved ListTab = 1
	ListTabClosed   ListTab = 2
)
