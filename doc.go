/*
Package ledger provides a fixed-capacity Entity-Component-System (ECS) table for
frame-driven games and simulations.

Every capacity of a table is chosen before it is built: the number of entities,
component kinds and systems, and the number of subscribers each system can hold.
Nothing grows afterwards, so the cost of each call is bounded and known.

Core Concepts:

  - Entity: an integer handle, allocated lowest-free-first.
  - Component: a data record attached to an entity under a Kind.
  - System: a per-frame processor with a Select predicate and a set of subscribed entities.
  - Query: a cached read of a system's subscribers, or a predicate computed over
    the table or over one system's subscribers.

Entities join systems only when Subscribe is called on them, and stay subscribed
until they are destroyed.

Basic Usage:

	table, _ := ledger.Factory.NewTable(ledger.DefaultTableConfig())

	position := ledger.FactoryNewKind[Position](0)
	velocity := ledger.FactoryNewKind[Velocity](1)

	table.AddSystem(0, NewMovement(table, position, velocity))
	table.Init()

	e := table.Create()
	position.Add(table, e, &Position{})
	velocity.Add(table, e, &Velocity{X: 1})
	table.Subscribe(e)

	for {
		table.Update()
	}

Broken preconditions (an id out of range, a duplicate attach, a missing
component, a full container) are not returned as errors: they are logged and
raised as a panic carrying a typed error. The one expected failure, a full
table, is reported by Create returning NoEntity.
*/
package ledger
