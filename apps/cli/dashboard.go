package main

import "github.com/trezcool/talanta/core/dashboard"

type filterOutput struct {
	Filter dashboard.Filter      `json:"filter"`
	Params dashboard.QueryParams `json:"params"`
	Query  string                `json:"query"`
}

func (cli *commandLine) listCategories() error {
	return cli.write(cli.svc.Normalizer().Registry().All())
}

func (cli *commandLine) buildCards(path string, hideEmpty bool) error {
	p, err := cli.readPayload(path)
	if err != nil {
		return err
	}
	d := cli.svc.Build(p)
	if hideEmpty {
		d.Cards = dashboard.VisibleCards(d.Cards)
	}
	return cli.write(d)
}

func (cli *commandLine) allocatePie(path string, minAngle float64) error {
	p, err := cli.readPayload(path)
	if err != nil {
		return err
	}
	return cli.write(cli.svc.Pie(cli.svc.Build(p).Cards, minAngle))
}

// translateFilter fails open like the API: unknown IDs print the "all" query.
func (cli *commandLine) translateFilter(id string) error {
	f, ok := dashboard.LookupFilter(id)
	if !ok {
		f, _ = dashboard.LookupFilter(dashboard.FilterAll)
	}
	params := dashboard.Translate(f.ID, nowFunc())
	return cli.write(filterOutput{Filter: f, Params: params, Query: params.Values().Encode()})
}
