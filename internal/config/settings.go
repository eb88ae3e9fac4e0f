package config

import (
	"fmt"

	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Config struct {
	Backend  Backend
	Poll     Poll
	Client   Client
	Resolver Resolver
	Server   Server
	Metrics  Metrics
	Health   Health
	Logger   Logger
	Shoutrrr Shoutrrr
}

func (c *Config) SetDefaults() {
	c.Backend.setDefaults()
	c.Poll.setDefaults()
	c.Client.setDefaults()
	c.Resolver.setDefaults()
	c.Server.setDefaults()
	c.Metrics.setDefaults()
	c.Health.SetDefaults()
	c.Logger.setDefaults()
	c.Shoutrrr.setDefaults()
}

func (c Config) Validate() (err error) {
	type validator interface {
		Validate() (err error)
	}
	toValidate := map[string]validator{
		"backend":  &c.Backend,
		"poll":     &c.Poll,
		"client":   &c.Client,
		"resolver": &c.Resolver,
		"server":   &c.Server,
		"metrics":  &c.Metrics,
		"health":   &c.Health,
		"logger":   &c.Logger,
		"shoutrrr": &c.Shoutrrr,
	}

	for name, v := range toValidate {
		err = v.Validate()
		if err != nil {
			return fmt.Errorf("%s settings: %w", name, err)
		}
	}

	return nil
}

func (c Config) String() string {
	return c.toLinesNode().String()
}

func (c Config) toLinesNode() *gotree.Node {
	node := gotree.New("Settings summary:")
	node.AppendNode(c.Backend.toLinesNode())
	node.AppendNode(c.Poll.toLinesNode())
	node.AppendNode(c.Client.toLinesNode())
	node.AppendNode(c.Resolver.ToLinesNode())
	node.AppendNode(c.Server.toLinesNode())
	node.AppendNode(c.Metrics.toLinesNode())
	node.AppendNode(c.Health.toLinesNode())
	node.AppendNode(c.Logger.toLinesNode())
	node.AppendNode(c.Shoutrrr.ToLinesNode())
	return node
}

func (c *Config) Read(reader *reader.Reader,
	warner Warner) (err error) {
	c.Backend.read(reader)

	err = c.Poll.read(reader, warner)
	if err != nil {
		return fmt.Errorf("reading poll settings: %w", err)
	}

	err = c.Client.read(reader)
	if err != nil {
		return fmt.Errorf("reading client settings: %w", err)
	}

	err = c.Resolver.read(reader)
	if err != nil {
		return fmt.Errorf("reading resolver settings: %w", err)
	}

	err = c.Server.read(reader, warner)
	if err != nil {
		return fmt.Errorf("reading server settings: %w", err)
	}

	err = c.Metrics.read(reader)
	if err != nil {
		return fmt.Errorf("reading metrics settings: %w", err)
	}

	c.Health.Read(reader)

	err = c.Logger.read(reader)
	if err != nil {
		return fmt.Errorf("reading logger settings: %w", err)
	}

	c.Shoutrrr.read(reader)

	return nil
}
