package main

type uiState struct {
	statusMsg  string
	statusType string
	statusSeq  int
	closeLog   []closeRecord
	closed     int
}

const closeLogSize = 4

func (u *uiState) logClose(r closeRecord) {
	u.closed++
	u.closeLog = append(u.closeLog, r)
	if len(u.closeLog) > closeLogSize {
		u.closeLog = u.closeLog[len(u.closeLog)-closeLogSize:]
	}
}
