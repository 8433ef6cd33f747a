package client

import "time"

type Clients struct {
	*EntriesAPI
}

func InitClients(entriesURL string, timeout time.Duration) Clients {
	return Clients{
		EntriesAPI: NewEntriesAPI(entriesURL, timeout),
	}
}
