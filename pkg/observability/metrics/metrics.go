package metrics

import (
	"fmt"
	"net/http"
	"sync/atomic"
)

var (
	runsCompleted      atomic.Int64
	runsFailed         atomic.Int64
	recordsMapped      atomic.Int64
	recordsUnmapped    atomic.Int64
	recordsOtherDomain atomic.Int64
)

func Init() {}

func ObserveRun(mapped, unmapped, otherDomain int, failed bool) {
	if failed {
		runsFailed.Add(1)
		return
	}
	runsCompleted.Add(1)
	recordsMapped.Add(int64(mapped))
	recordsUnmapped.Add(int64(unmapped))
	recordsOtherDomain.Add(int64(otherDomain))
}

func WritePrometheus(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")
	fmt.Fprintf(w, "# HELP omop_etl_mapping_runs_completed_total Number of mapping runs that completed.\n")
	fmt.Fprintf(w, "# TYPE omop_etl_mapping_runs_completed_total counter\n")
	fmt.Fprintf(w, "omop_etl_mapping_runs_completed_total %d\n", runsCompleted.Load())

	fmt.Fprintf(w, "# HELP omop_etl_mapping_runs_failed_total Number of mapping runs that failed.\n")
	fmt.Fprintf(w, "# TYPE omop_etl_mapping_runs_failed_total counter\n")
	fmt.Fprintf(w, "omop_etl_mapping_runs_failed_total %d\n", runsFailed.Load())

	fmt.Fprintf(w, "# HELP omop_etl_records_mapped_total Stem records routed into a destination table.\n")
	fmt.Fprintf(w, "# TYPE omop_etl_records_mapped_total counter\n")
	fmt.Fprintf(w, "omop_etl_records_mapped_total %d\n", recordsMapped.Load())

	fmt.Fprintf(w, "# HELP omop_etl_records_unmapped_total Stem records excluded because their concept had no vocabulary entry.\n")
	fmt.Fprintf(w, "# TYPE omop_etl_records_unmapped_total counter\n")
	fmt.Fprintf(w, "omop_etl_records_unmapped_total %d\n", recordsUnmapped.Load())

	fmt.Fprintf(w, "# HELP omop_etl_records_other_domain_total Stem records excluded because their concept resolved to a different domain.\n")
	fmt.Fprintf(w, "# TYPE omop_etl_records_other_domain_total counter\n")
	fmt.Fprintf(w, "omop_etl_records_other_domain_total %d\n", recordsOtherDomain.Load())
}
