// Package exports builds the table of exported schema definitions.
//
// Every entry of components.schemas becomes an [Entry] holding its reference,
// its component name, a TypeScript identifier and its dereferenced body. The
// table is ordered so that a definition never references an identifier that
// is emitted after it:
//
//	table, err := exports.Build(resolver.New(doc))
//	if err != nil {
//		return err
//	}
//	for ref, entry := range table.All() {
//		fmt.Println(ref, entry.Identifier)
//	}
//
// Distinct component names can normalize to the same identifier ("pet_store"
// and "PetStore"). Such collisions are reported through [Table.Collisions]
// and logged as warnings; both entries stay in the table.
//
// Identifiers the generated module binds itself, the File global and any
// name passed to [WithReserved], are never used for a schema. A schema that
// would take one gets a "Schema" suffix instead ("File" becomes
// "FileSchema"), reported through [Table.Renames].
package exports
