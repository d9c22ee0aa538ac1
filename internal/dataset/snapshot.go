package dataset

import "slices"

// Records groups the raw entity collections used to build a Snapshot.
type Records struct {
	Projects    []Project
	Clients     []Client
	Invoices    []Invoice
	Expenses    []Expense
	TimeEntries []TimeEntry
	TeamMembers []TeamMember
	SalesLeads  []SalesLead
	Tasks       []Task
}

// Snapshot is an immutable, indexed view over a set of Records. It is safe
// for concurrent use.
type Snapshot struct {
	records Records

	projectIdx map[string]int
	clientIdx  map[string]int
	memberIdx  map[string]int

	invoicesByProject map[string][]int
	expensesByProject map[string][]int
	entriesByProject  map[string][]int
}

// New copies the given records into a Snapshot and indexes them by ID. When
// IDs repeat, the first record wins.
func New(r Records) *Snapshot {
	s := &Snapshot{
		records: Records{
			Projects:    slices.Clone(r.Projects),
			Clients:     slices.Clone(r.Clients),
			Invoices:    slices.Clone(r.Invoices),
			Expenses:    slices.Clone(r.Expenses),
			TimeEntries: slices.Clone(r.TimeEntries),
			TeamMembers: slices.Clone(r.TeamMembers),
			SalesLeads:  slices.Clone(r.SalesLeads),
			Tasks:       slices.Clone(r.Tasks),
		},
		projectIdx:        make(map[string]int, len(r.Projects)),
		clientIdx:         make(map[string]int, len(r.Clients)),
		memberIdx:         make(map[string]int, len(r.TeamMembers)),
		invoicesByProject: make(map[string][]int),
		expensesByProject: make(map[string][]int),
		entriesByProject:  make(map[string][]int),
	}

	for i, p := range s.records.Projects {
		if _, exists := s.projectIdx[p.ID]; !exists {
			s.projectIdx[p.ID] = i
		}
	}
	for i, c := range s.records.Clients {
		if _, exists := s.clientIdx[c.ID]; !exists {
			s.clientIdx[c.ID] = i
		}
	}
	for i, m := range s.records.TeamMembers {
		if _, exists := s.memberIdx[m.ID]; !exists {
			s.memberIdx[m.ID] = i
		}
	}
	for i, inv := range s.records.Invoices {
		s.invoicesByProject[inv.ProjectID] = append(s.invoicesByProject[inv.ProjectID], i)
	}
	for i, e := range s.records.Expenses {
		if e.ProjectID == "" {
			continue
		}
		s.expensesByProject[e.ProjectID] = append(s.expensesByProject[e.ProjectID], i)
	}
	for i, te := range s.records.TimeEntries {
		s.entriesByProject[te.ProjectID] = append(s.entriesByProject[te.ProjectID], i)
	}

	return s
}

// Project looks up a project by ID.
func (s *Snapshot) Project(id string) (Project, bool) {
	i, ok := s.projectIdx[id]
	if !ok {
		return Project{}, false
	}
	return s.records.Projects[i], true
}

// Client looks up a client by ID.
func (s *Snapshot) Client(id string) (Client, bool) {
	i, ok := s.clientIdx[id]
	if !ok {
		return Client{}, false
	}
	return s.records.Clients[i], true
}

// Member looks up a team member by ID.
func (s *Snapshot) Member(id string) (TeamMember, bool) {
	i, ok := s.memberIdx[id]
	if !ok {
		return TeamMember{}, false
	}
	return s.records.TeamMembers[i], true
}

// InvoicesFor returns the invoices referencing a project in dataset order.
func (s *Snapshot) InvoicesFor(projectID string) []Invoice {
	return pick(s.records.Invoices, s.invoicesByProject[projectID])
}

// ExpensesFor returns the expenses referencing a project in dataset order.
func (s *Snapshot) ExpensesFor(projectID string) []Expense {
	return pick(s.records.Expenses, s.expensesByProject[projectID])
}

// TimeEntriesFor returns the time entries referencing a project in dataset order.
func (s *Snapshot) TimeEntriesFor(projectID string) []TimeEntry {
	return pick(s.records.TimeEntries, s.entriesByProject[projectID])
}

// Collection accessors return copies in dataset order.
func (s *Snapshot) Projects() []Project { return slices.Clone(s.records.Projects) }
func (s *Snapshot) Clients() []Client { return slices.Clone(s.records.Clients) }
func (s *Snapshot) Invoices() []Invoice { return slices.Clone(s.records.Invoices) }
func (s *Snapshot) Expenses() []Expense { return slices.Clone(s.records.Expenses) }
func (s *Snapshot) TimeEntries() []TimeEntry { return slices.Clone(s.records.TimeEntries) }
func (s *Snapshot) TeamMembers() []TeamMember { return slices.Clone(s.records.TeamMembers) }
func (s *Snapshot) SalesLeads() []SalesLead { return slices.Clone(s.records.SalesLeads) }
func (s *Snapshot) Tasks() []Task { return slices.Clone(s.records.Tasks) }

func pick[T any](all []T, idx []int) []T {
	if len(idx) == 0 {
		return nil
	}
	out := make([]T, 0, len(idx))
	for _, i := range idx {
		out = append(out, all[i])
	}
	return out
}
