package appointment

import "github.com/m04kA/ATL-SchedulingService/pkg/dbmetrics"

// Переиспользуем интерфейс исполнителя из dbmetrics для работы с БД.
// Поддерживает *sql.DB и обертку *dbmetrics.DB с метриками.
type DBExecutor = dbmetrics.DBExecutor
