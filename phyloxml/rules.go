package phyloxml

// Restricted string types of the phyloXML 1.10 schema.
var (
	refRule    = Pattern(`[a-zA-Z0-9_]+:[a-zA-Z0-9_\.\-\s]+`)
	doiRule    = Pattern(`[a-zA-Z0-9_\.]+/[a-zA-Z0-9_\.]+`)
	molSeqRule = Pattern(`[a-zA-Z\.\-\?\*_]+`)
	symbolRule = Pattern(`\S{1,10}`)
	codeRule   = Pattern(`[a-zA-Z0-9_]{2,10}`)

	eventTypeRule = OneOf("event types",
		"transfer", "fusion", "speciation_or_duplication", "other", "mixed",
		"unassigned")

	seqTypeRule = OneOf("sequence types", "rna", "dna", "protein")

	seqRelationTypeRule = OneOf("sequence relation types",
		"orthology", "one_to_one_orthology", "super_orthology", "paralogy",
		"ultra_paralogy", "xenology", "unknown", "other")

	appliesToRule = OneOf("property targets",
		"phylogeny", "clade", "node", "annotation", "parent_branch", "other")

	datatypeRule = OneOf("xsd datatypes",
		"xsd:string", "xsd:boolean", "xsd:decimal", "xsd:float",
		"xsd:double", "xsd:duration", "xsd:dateTime", "xsd:time", "xsd:date",
		"xsd:gYearMonth", "xsd:gYear", "xsd:gMonthDay", "xsd:gDay",
		"xsd:gMonth", "xsd:hexBinary", "xsd:base64Binary", "xsd:anyURI",
		"xsd:normalizedString", "xsd:token", "xsd:integer",
		"xsd:nonPositiveInteger", "xsd:negativeInteger", "xsd:long",
		"xsd:int", "xsd:short", "xsd:byte", "xsd:nonNegativeInteger",
		"xsd:unsignedLong", "xsd:unsignedInt", "xsd:unsignedShort",
		"xsd:unsignedByte", "xsd:positiveInteger")

	rankRule = OneOf("taxonomic ranks",
		"domain", "kingdom", "subkingdom", "branch", "infrakingdom",
		"superphylum", "phylum", "subphylum", "infraphylum", "microphylum",
		"superdivision", "division", "subdivision", "infradivision",
		"superclass", "class", "subclass", "infraclass", "superlegion",
		"legion", "sublegion", "infralegion", "supercohort", "cohort",
		"subcohort", "infracohort", "superorder", "order", "suborder",
		"superfamily", "family", "subfamily", "supertribe", "tribe",
		"subtribe", "infratribe", "genus", "subgenus", "superspecies",
		"species", "subspecies", "variety", "subvariety", "form", "subform",
		"cultivar", "unknown", "other")
)
