package driver

// Cypher used by the mirror. Property bags travel as JSON text since their
// keys are open-ended; graph-side consumers unpack them as needed.

const SaveEntityQuery = `
MERGE (n:Entity {id: $id})
SET n.type = $type,
    n.name = $name,
    n.content = $content,
    n.properties = $properties,
    n.confidence = $confidence,
    n.source = $source,
    n.timestamp = $timestamp
`

const SaveRelationshipQuery = `
MATCH (a:Entity {id: $from_id})
MATCH (b:Entity {id: $to_id})
MERGE (a)-[r:RELATES {id: $id}]->(b)
SET r.type = $type,
    r.properties = $properties,
    r.confidence = $confidence,
    r.timestamp = $timestamp
`

const SaveCategoryQuery = `
MERGE (c:Category {label: $label})
WITH c
MATCH (n:Entity {id: $entity_id})
MERGE (n)-[:IN_CATEGORY]->(c)
`
