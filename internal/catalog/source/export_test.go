package source

// SaveBatch exposes the statements queued by [PostgresSource.Save].
var SaveBatch = saveBatch
