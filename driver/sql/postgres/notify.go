package postgres

import "fmt"

const sqlFuncEventNotify = `DO LANGUAGE plpgsql $EXIST$
BEGIN
  IF (SELECT to_regprocedure('goledger_event_notify()') IS NULL) THEN
    CREATE FUNCTION goledger_event_notify ()
      RETURNS TRIGGER
    LANGUAGE plpgsql AS $$
    DECLARE
      channel text := TG_ARGV[0];
    BEGIN
      PERFORM (
        WITH payload AS
        (
          SELECT NEW.no, NEW.event_id, NEW.event_type, NEW.stream
        )
        SELECT pg_notify(channel, row_to_json(payload)::text) FROM payload
      );
      RETURN NULL;
    END;
    $$;
  END IF;
END;
$EXIST$`

// notifySchema returns the statements creating a trigger that notifies the channel of every inserted event
func notifySchema(tableName string, channel string) []string {
	triggerName := tableName + "_notify"

	/* #nosec G201 */
	return []string{
		sqlFuncEventNotify,
		fmt.Sprintf(
			`DO LANGUAGE plpgsql $EXIST$
BEGIN
  IF NOT EXISTS(
    SELECT TRUE FROM pg_trigger WHERE
      tgrelid = %[1]s::regclass AND
      tgname = %[2]s
  )
  THEN
    CREATE TRIGGER %[3]s
      AFTER INSERT
      ON %[4]s
      FOR EACH ROW
    EXECUTE PROCEDURE goledger_event_notify(%[5]s);
  END IF;
END;
$EXIST$`,
			QuoteString(tableName),
			QuoteString(triggerName),
			QuoteIdentifier(triggerName),
			QuoteIdentifier(tableName),
			QuoteString(channel),
		),
	}
}
