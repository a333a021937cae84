package honeycomb

import "sort"

// Operation describes one API operation for discovery and tool-schema
// generation.
type Operation struct {
	Name        string `json:"name"        yaml:"name"`
	Method      string `json:"method"      yaml:"method"`
	Path        string `json:"path"        yaml:"path"`
	Description string `json:"description" yaml:"description"`
}

// OperationRegistry is an explicit, immutable catalog of API operations.
// It is constructed once by NewOperationRegistry and passed by reference to
// whatever needs it; there is no process-wide singleton.
type OperationRegistry struct {
	ops map[string]Operation
}

// NewOperationRegistry builds the catalog of supported operations.
func NewOperationRegistry() *OperationRegistry {
	registry := &OperationRegistry{ops: make(map[string]Operation)}

	for _, op := range []Operation{
		{"auth.whoami", "GET", "/1/auth", "Describe the authenticated API key"},
		{"datasets.list", "GET", "/1/datasets", "List all datasets"},
		{"datasets.get", "GET", "/1/datasets/{slug}", "Get a dataset by slug"},
		{"datasets.create", "POST", "/1/datasets", "Create a dataset"},
		{"datasets.update", "PUT", "/1/datasets/{slug}", "Update a dataset"},
		{"datasets.delete", "DELETE", "/1/datasets/{slug}", "Delete a dataset"},
		{"columns.list", "GET", "/1/columns/{dataset}", "List columns in a dataset"},
		{"columns.create", "POST", "/1/columns/{dataset}", "Create a column"},
		{"columns.update", "PUT", "/1/columns/{dataset}/{id}", "Update a column"},
		{"columns.delete", "DELETE", "/1/columns/{dataset}/{id}", "Delete a column"},
		{"derived_columns.list", "GET", "/1/derived_columns/{dataset}", "List derived columns"},
		{"derived_columns.create", "POST", "/1/derived_columns/{dataset}", "Create a derived column"},
		{"queries.create", "POST", "/1/queries/{dataset}", "Persist a query specification"},
		{"queries.get", "GET", "/1/queries/{dataset}/{id}", "Get a saved query"},
		{"query_results.create", "POST", "/1/query_results/{dataset}", "Run a saved query"},
		{"query_results.get", "GET", "/1/query_results/{dataset}/{id}", "Fetch a query result"},
		{"triggers.list", "GET", "/1/triggers/{dataset}", "List triggers in a dataset"},
		{"triggers.get", "GET", "/1/triggers/{dataset}/{id}", "Get a trigger"},
		{"triggers.create", "POST", "/1/triggers/{dataset}", "Create a trigger"},
		{"triggers.update", "PUT", "/1/triggers/{dataset}/{id}", "Update a trigger"},
		{"triggers.delete", "DELETE", "/1/triggers/{dataset}/{id}", "Delete a trigger"},
		{"boards.list", "GET", "/1/boards", "List boards"},
		{"boards.get", "GET", "/1/boards/{id}", "Get a board"},
		{"boards.create", "POST", "/1/boards", "Create a board"},
		{"boards.update", "PUT", "/1/boards/{id}", "Update a board"},
		{"boards.delete", "DELETE", "/1/boards/{id}", "Delete a board"},
		{"markers.list", "GET", "/1/markers/{dataset}", "List markers in a dataset"},
		{"markers.create", "POST", "/1/markers/{dataset}", "Create a marker"},
		{"markers.update", "PUT", "/1/markers/{dataset}/{id}", "Update a marker"},
		{"markers.delete", "DELETE", "/1/markers/{dataset}/{id}", "Delete a marker"},
		{"slos.list", "GET", "/1/slos/{dataset}", "List SLOs in a dataset"},
		{"slos.get", "GET", "/1/slos/{dataset}/{id}", "Get an SLO"},
		{"slos.create", "POST", "/1/slos/{dataset}", "Create an SLO"},
		{"burn_alerts.list", "GET", "/1/burn_alerts/{dataset}", "List burn alerts for an SLO"},
		{"burn_alerts.create", "POST", "/1/burn_alerts/{dataset}", "Create a burn alert"},
		{"recipients.list", "GET", "/1/recipients", "List notification recipients"},
		{"recipients.create", "POST", "/1/recipients", "Create a notification recipient"},
		{"api_keys.list", "GET", "/2/teams/{team}/api-keys", "List API keys (management)"},
		{"api_keys.create", "POST", "/2/teams/{team}/api-keys", "Create an API key (management)"},
		{"events.send", "POST", "/1/events/{dataset}", "Send a single event"},
		{"events.batch", "POST", "/1/batch/{dataset}", "Send a batch of events"},
	} {
		registry.ops[op.Name] = op
	}

	return registry
}

// Get looks up an operation by name.
func (r *OperationRegistry) Get(name string) (Operation, bool) {
	op, ok := r.ops[name]

	return op, ok
}

// List returns all operations sorted by name.
func (r *OperationRegistry) List() []Operation {
	ops := make([]Operation, 0, len(r.ops))
	for _, op := range r.ops {
		ops = append(ops, op)
	}

	sort.Slice(ops, func(i, j int) bool { return ops[i].Name < ops[j].Name })

	return ops
}

// Len returns the number of registered operations.
func (r *OperationRegistry) Len() int {
	return len(r.ops)
}
