package main

import (
	"strings"

	classDomain "srp/internal/domain/childrenclass"
	groupDomain "srp/internal/domain/junioryouth"
	circleDomain "srp/internal/domain/studycircle"
)

// rosterEntry splits a name[:age[:registered]] flag value. Missing parts
// stay empty.
func rosterEntry(s string) (name, age, registered string) {
	parts := strings.SplitN(s, ":", 3)
	name = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		age = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 {
		registered = strings.TrimSpace(parts[2])
	}
	return name, age, registered
}

func parseChildren(values []string) []classDomain.Child {
	if len(values) == 0 {
		return nil
	}
	out := make([]classDomain.Child, 0, len(values))
	for _, v := range values {
		name, age, registered := rosterEntry(v)
		out = append(out, classDomain.Child{Name: name, Age: age, Registered: registered})
	}
	return out
}

func parseGroupParticipants(values []string) []groupDomain.Participant {
	if len(values) == 0 {
		return nil
	}
	out := make([]groupDomain.Participant, 0, len(values))
	for _, v := range values {
		name, age, registered := rosterEntry(v)
		out = append(out, groupDomain.Participant{Name: name, Age: age, Registered: registered})
	}
	return out
}

// parseCircleParticipants splits name[:done] values. A trailing "done"
// marks the participant as having completed the current book.
func parseCircleParticipants(values []string) []circleDomain.Participant {
	if len(values) == 0 {
		return nil
	}
	out := make([]circleDomain.Participant, 0, len(values))
	for _, v := range values {
		parts := strings.SplitN(v, ":", 2)
		p := circleDomain.Participant{Name: strings.TrimSpace(parts[0])}
		if len(parts) > 1 {
			p.Completed = strings.EqualFold(strings.TrimSpace(parts[1]), "done")
		}
		out = append(out, p)
	}
	return out
}
